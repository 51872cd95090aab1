package gql

// Regenerates generated.go from operations.graphql. Requires a schema
// snapshot at schema.graphql; export one from the backend first.
//go:generate go run github.com/wandb/wandb/filesync/cmd/generate_gql
