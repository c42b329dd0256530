package types

// Standard collection names for the store.
const (
	ShopsCollection = "shops"
	LogsCollection  = "logs"
)

// StandardCollectionNames lists all standard collection names for enumeration.
var StandardCollectionNames = []string{
	ShopsCollection,
	LogsCollection,
}
