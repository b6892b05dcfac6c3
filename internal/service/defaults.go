package service

import (
	"gorm.io/datatypes"
)

// defaultArray returns the value unchanged when supplied, else an empty JSON
// array. Create paths use this so no JSON field is ever stored null.
func defaultArray(v datatypes.JSON) datatypes.JSON {
	if v != nil {
		return v
	}
	return datatypes.JSON("[]")
}

// defaultObject is the object-typed counterpart of defaultArray
func defaultObject(v datatypes.JSON) datatypes.JSON {
	if v != nil {
		return v
	}
	return datatypes.JSON("{}")
}
