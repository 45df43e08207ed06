// Package compendium provides a client for the Hyrule Compendium API.
//
// The API catalogs in-game entries (creatures, equipment, materials,
// monsters and treasure) with their metadata and images, and exposes an
// optional "master mode" endpoint mirroring the monster data for the
// harder game variant.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the main API client orchestrating primary and master mode lookups
//   - Entry/Compendium: loosely typed documents with accessors for known fields
//   - EntryImage: on-demand image download bound to the resolving endpoint
//   - Errors: structured error types for missing entries and bad categories
//
// # Usage
//
// Create a client and look up an entry:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := compendium.New(logger,
//		compendium.WithMasterMode(),
//		compendium.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	entry, err := client.GetEntry(ctx, "silver_lynel", compendium.ModeAuto)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(entry.Name(), entry.ImageURL())
//
// # Endpoint selection
//
// Every operation takes a Mode. ModeAuto resolves entries by probing the
// primary endpoint before master mode and merges the monster lists that
// span both endpoints; ModePrimary and ModeMaster pin the lookup to one
// endpoint with no fallback.
//
// # Error Handling
//
// Lookup failures are typed:
//
//   - *EntryNotFoundError: the entry exists on no queried endpoint
//   - *UnknownCategoryError: the category is outside the fixed set
//   - ErrMasterModeDisabled: ModeMaster on a client without master mode
//
// Transport failures (timeouts, connection errors) and malformed JSON
// are wrapped with %w and never converted into domain errors:
//
//	if compendium.IsEntryNotFound(err) {
//		// handle the miss
//	}
package compendium
