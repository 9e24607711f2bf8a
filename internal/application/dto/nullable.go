package dto

import "encoding/json"

// NullableString distingue tres estados en un JSON parcial:
// campo ausente (Set=false), null explícito (Set=true, Value=nil)
// y valor presente (Set=true, Value!=nil). Un null explícito limpia
// el valor almacenado; un campo ausente lo deja intacto.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON solo se invoca si el campo está presente en el cuerpo.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON serializa el valor (null si no hay).
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
