package models

// Level is one of the five ordered proficiency ranks a user holds per subject.
type Level string

const (
	LevelNovice     Level = "Novice"
	LevelStudent    Level = "Student"
	LevelIntern     Level = "Intern"
	LevelResident   Level = "Resident"
	LevelSpecialist Level = "Specialist"
)

var levelOrder = []Level{
	LevelNovice,
	LevelStudent,
	LevelIntern,
	LevelResident,
	LevelSpecialist,
}

func (l Level) Valid() bool {
	for _, lv := range levelOrder {
		if l == lv {
			return true
		}
	}
	return false
}

// Next returns the rank one step above l. ok is false when l is already
// the top rank or is not a known rank.
func (l Level) Next() (Level, bool) {
	for i, lv := range levelOrder {
		if l == lv {
			if i+1 < len(levelOrder) {
				return levelOrder[i+1], true
			}
			return l, false
		}
	}
	return l, false
}

func (l Level) String() string { return string(l) }
