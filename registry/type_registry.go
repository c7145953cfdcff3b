package registry

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UnmarshalFunc defines a function that takes a raw DynamoDB item and returns the unmarshaled object.
type UnmarshalFunc func(item map[string]types.AttributeValue) (interface{}, error)

// typeRegistry holds the mapping from an entity type tag (like "Record" or "UserProfile")
// to its unmarshal function. Scans over mixed-type tables use it to resolve each item.
var typeRegistry = make(map[string]UnmarshalFunc)

// RegisterType registers an unmarshal function for a given entity type tag.
// If a type is already registered for the given tag, it panics to prevent accidental overrides.
func RegisterType(tag string, fn UnmarshalFunc) {
	if _, exists := typeRegistry[tag]; exists {
		panic(fmt.Sprintf("type registry: type with tag %q already registered", tag))
	}
	typeRegistry[tag] = fn
}

// GetUnmarshalFunc returns the registered unmarshal function for the given entity type tag.
// If no function is registered, it returns an error.
func GetUnmarshalFunc(tag string) (UnmarshalFunc, error) {
	fn, ok := typeRegistry[tag]
	if !ok {
		return nil, fmt.Errorf("type registry: no type registered for tag %q", tag)
	}
	return fn, nil
}
