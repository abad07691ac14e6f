package registration

// Field names tracked by the form, in presentation order.
const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldUsername         = "username"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldPhoneCountryCode = "phoneCountryCode"
	FieldPhone            = "phone"
	FieldCountry          = "country"
	FieldCity             = "city"
	FieldPAN              = "pan"
	FieldAadhaar          = "aadhaar"
)

// DefaultPhoneCountryCode seeds the phoneCountryCode field.
const DefaultPhoneCountryCode = "+91"

var fieldNames = []string{
	FieldFirstName,
	FieldLastName,
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldPhoneCountryCode,
	FieldPhone,
	FieldCountry,
	FieldCity,
	FieldPAN,
	FieldAadhaar,
}

// FieldNames returns the known field names in form order.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

// IsField reports whether name is one of the known form fields.
func IsField(name string) bool {
	for _, candidate := range fieldNames {
		if candidate == name {
			return true
		}
	}
	return false
}

// FormData is an ordered mapping of field names to raw string values. Keys
// keep their insertion order; setting a new key appends it.
type FormData struct {
	keys   []string
	values map[string]string
}

// NewFormData returns the initial form values: every known field empty except
// phoneCountryCode.
func NewFormData() FormData {
	data := FormData{
		keys:   make([]string, 0, len(fieldNames)),
		values: make(map[string]string, len(fieldNames)),
	}
	for _, name := range fieldNames {
		data.Set(name, "")
	}
	data.Set(FieldPhoneCountryCode, DefaultPhoneCountryCode)
	return data
}

// Get returns the value stored for name.
func (d FormData) Get(name string) (string, bool) {
	value, ok := d.values[name]
	return value, ok
}

// Set stores value under name, appending name when it is new.
func (d *FormData) Set(name, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.values[name] = value
}

// Keys returns the field names in iteration order.
func (d FormData) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len reports the number of stored fields.
func (d FormData) Len() int {
	return len(d.keys)
}

// Clone returns an independent copy.
func (d FormData) Clone() FormData {
	out := FormData{
		keys:   append([]string(nil), d.keys...),
		values: make(map[string]string, len(d.values)),
	}
	for key, value := range d.values {
		out.values[key] = value
	}
	return out
}

// Map returns the values as a plain map.
func (d FormData) Map() map[string]string {
	out := make(map[string]string, len(d.values))
	for key, value := range d.values {
		out[key] = value
	}
	return out
}

func (d FormData) allFilled() bool {
	for _, key := range d.keys {
		if isBlank(d.values[key]) {
			return false
		}
	}
	return true
}

// ErrorMap holds field error messages. A missing key or an empty message both
// mean the field has no known error.
type ErrorMap map[string]string

// Clone returns a copy of the map.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for key, value := range e {
		out[key] = value
	}
	return out
}

// Empty reports whether every entry is blank.
func (e ErrorMap) Empty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Entry is one name/value pair of a Snapshot.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Snapshot is an immutable copy of the form values captured at submit time.
type Snapshot struct {
	data FormData
}

// NewSnapshot copies data into a Snapshot.
func NewSnapshot(data FormData) *Snapshot {
	return &Snapshot{data: data.Clone()}
}

// Get returns the value captured for name.
func (s *Snapshot) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.data.Get(name)
}

// Entries returns the captured values in field order.
func (s *Snapshot) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.data.keys))
	for _, key := range s.data.keys {
		out = append(out, Entry{Name: key, Value: s.data.values[key]})
	}
	return out
}

// Map returns the captured values as a plain map.
func (s *Snapshot) Map() map[string]string {
	if s == nil {
		return nil
	}
	return s.data.Map()
}

// Len reports the number of captured fields.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.data.Len()
}
