package battle

import (
	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

// FormationColumns is the number of slots in a side's row
const FormationColumns = 5

// Row is the depth a formation assigns to a column
type Row string

const (
	RowFront Row = "front"
	RowMid   Row = "mid"
	RowRear  Row = "rear"
)

// FormationType names a row layout
type FormationType string

const (
	FormationSkewed      FormationType = "skewed"
	FormationArch        FormationType = "arch"
	FormationReverseArch FormationType = "reverse_arch"
	FormationValley      FormationType = "valley"
	FormationLine        FormationType = "line"
)

var formationRows = map[FormationType][FormationColumns]Row{
	FormationSkewed:      {RowFront, RowFront, RowMid, RowRear, RowRear},
	FormationArch:        {RowRear, RowMid, RowFront, RowMid, RowRear},
	FormationReverseArch: {RowFront, RowMid, RowRear, RowMid, RowFront},
	FormationValley:      {RowFront, RowRear, RowMid, RowRear, RowFront},
	FormationLine:        {RowMid, RowMid, RowMid, RowMid, RowMid},
}

// Formation describes how a side's five columns are staggered
type Formation struct {
	Type FormationType `json:"type"`
}

// NewFormation returns a formation of the given type
func NewFormation(formationType FormationType) (*Formation, error) {
	if _, ok := formationRows[formationType]; !ok {
		return nil, errors.Validationf("unknown formation type %q", formationType)
	}
	return &Formation{Type: formationType}, nil
}

// RowOf returns the row of a column
func (f *Formation) RowOf(column int) (Row, error) {
	rows, ok := formationRows[f.Type]
	if !ok {
		return "", errors.Validationf("unknown formation type %q", f.Type)
	}
	if column < 0 || column >= FormationColumns {
		return "", errors.Validationf("column %d outside formation", column)
	}
	return rows[column], nil
}
