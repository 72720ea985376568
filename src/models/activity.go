package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"github.com/tidwall/gjson"
)

// Activity กิจกรรมชมรม 1 รายการ (key คือชื่อกิจกรรม)
type Activity struct {
	Description     string   `json:"description" bson:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" bson:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" bson:"max_participants" example:"12"`
	Participants    []string `json:"participants" bson:"participants" example:"michael@mergington.edu,daniel@mergington.edu"`
}

// AvailableSlots is capacity minus enrollment, floored at zero.
func (a Activity) AvailableSlots() int {
	return max(0, a.MaxParticipants-len(a.Participants))
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

var ErrNotAnObject = errors.New("activities: expected a JSON object")

// Activities is the name → Activity mapping served by GET /activities.
// Iteration order is insertion order, which is also the JSON document order.
type Activities struct {
	names  []string
	byName map[string]Activity
}

func NewActivities() *Activities {
	return &Activities{byName: map[string]Activity{}}
}

// Set stores an activity. A new name is appended; an existing name keeps its position.
func (a *Activities) Set(name string, activity Activity) {
	if a.byName == nil {
		a.byName = map[string]Activity{}
	}
	if _, ok := a.byName[name]; !ok {
		a.names = append(a.names, name)
	}
	a.byName[name] = activity
}

func (a *Activities) Get(name string) (Activity, bool) {
	activity, ok := a.byName[name]
	return activity, ok
}

func (a *Activities) Len() int {
	return len(a.names)
}

// Names returns the activity names in insertion order.
func (a *Activities) Names() []string {
	return append([]string(nil), a.names...)
}

// SortedNames returns the activity names in lexicographic order.
func (a *Activities) SortedNames() []string {
	names := a.Names()
	sort.Strings(names)
	return names
}

func (a *Activities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range a.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		activity := a.byName[name]
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		value, err := json.Marshal(activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON keeps the document order of the keys. Fields are read leniently:
// a missing or non-array "participants" means nobody signed up and a non-numeric
// "max_participants" means zero capacity.
func (a *Activities) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("activities: invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return ErrNotAnObject
	}

	decoded := NewActivities()
	result.ForEach(func(key, value gjson.Result) bool {
		decoded.Set(key.String(), activityFromJSON(value))
		return true
	})
	*a = *decoded
	return nil
}

func activityFromJSON(value gjson.Result) Activity {
	activity := Activity{
		Description: value.Get("description").String(),
		Schedule:    value.Get("schedule").String(),
	}
	if capacity := value.Get("max_participants"); capacity.Type == gjson.Number {
		activity.MaxParticipants = int(capacity.Int())
	}
	if participants := value.Get("participants"); participants.IsArray() {
		for _, p := range participants.Array() {
			activity.Participants = append(activity.Participants, p.String())
		}
	}
	return activity
}
