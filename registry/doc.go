/*
Package registry manages type registration and key schemas for ScanStore.

The registry system enables:
  - Polymorphic item resolution when scanning mixed-type tables
  - Resume-cursor validation against a table's key schema

Type Registry:
Maps entity type tags to unmarshal functions:

	registry.RegisterType("User", func(item map[string]types.AttributeValue) (interface{}, error) {
	    var u User
	    err := attributevalue.UnmarshalMap(item, &u)
	    return &u, err
	})

Key Schema Registry:
Associates Go types with the key attribute names of their table:

	registry.RegisterKeySchema[User]([]string{"PK", "SK"})

With a schema registered, the DynamoDB executor rejects a ScanFilterSpec
whose exclusive start key is missing a key attribute, instead of letting
the request fail remotely.

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
