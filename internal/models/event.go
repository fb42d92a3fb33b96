package models

import (
	"strings"
	"time"
)

// Bristol stool scale codes. 1-2 and 6-7 are the clinical extremes.
const (
	BristolUnset = 0
	BristolMin   = 1
	BristolMax   = 7
)

const (
	TagStrain  = "strain"
	TagBlood   = "blood"
	TagMucus   = "mucus"
	TagUrgency = "urgency"
)

// SymptomSet unifies the four fixed symptom flags and the open-ended tag
// list so every scan walks a single representation.
type SymptomSet struct {
	Bloating bool     `gorm:"not null;default:false" json:"bloating"`
	Gas      bool     `gorm:"not null;default:false" json:"gas"`
	Cramping bool     `gorm:"not null;default:false" json:"cramping"`
	Nausea   bool     `gorm:"not null;default:false" json:"nausea"`
	Tags     []string `gorm:"serializer:json" json:"tags,omitempty"`
}

func (set SymptomSet) AnyFlag() bool {
	return set.Bloating || set.Gas || set.Cramping || set.Nausea
}

func (set SymptomSet) Any() bool {
	return set.AnyFlag() || len(set.Tags) > 0
}

func (set SymptomSet) HasTag(name string) bool {
	for _, tag := range set.Tags {
		if strings.EqualFold(strings.TrimSpace(tag), name) {
			return true
		}
	}
	return false
}

type Event struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Timestamp time.Time  `gorm:"not null;index" json:"timestamp"`
	Bristol   int        `gorm:"not null;default:0" json:"bristol,omitempty"`
	Symptoms  SymptomSet `gorm:"embedded" json:"symptoms"`
	Notes     string     `json:"notes,omitempty"`
	PhotoRef  string     `json:"photoRef,omitempty"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

func (event Event) HasAbnormalBristol() bool {
	switch event.Bristol {
	case 1, 2, 6, 7:
		return true
	}
	return false
}
