package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const (
	BigFiveArity    = 5
	PreferenceArity = 3
	// ProfileVectorDims is the width of the combined b5‖p vector.
	ProfileVectorDims = BigFiveArity + PreferenceArity
)

type UserProfile struct {
	BaseModel
	Days     int             `json:"days"`
	EAnxious float64         `gorm:"column:e_anxious" json:"e_anxious"`
	ECurious float64         `gorm:"column:e_curious" json:"e_curious"`
	ETired   float64         `gorm:"column:e_tired" json:"e_tired"`
	B5       pq.Float64Array `gorm:"column:b5;type:double precision[]" json:"b5"`
	P        pq.Float64Array `gorm:"column:p;type:double precision[]" json:"p"`
	// ProfileVector is only set when B5 and P have their expected arity.
	ProfileVector *pgvector.Vector `gorm:"type:vector(8)" json:"-"`
}

// BuildProfileVector concatenates b5 and p into a single vector. ok is false
// when either slice has the wrong length.
func BuildProfileVector(b5, p []float64) (pgvector.Vector, bool) {
	if len(b5) != BigFiveArity || len(p) != PreferenceArity {
		return pgvector.Vector{}, false
	}
	v := make([]float32, 0, ProfileVectorDims)
	for _, x := range b5 {
		v = append(v, float32(x))
	}
	for _, x := range p {
		v = append(v, float32(x))
	}
	return pgvector.NewVector(v), true
}
