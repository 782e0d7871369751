package store

// RecordStore is the full operation surface the presentation layer is
// allowed to call: authentication and session state, per-entity CRUD,
// derived queries, the test-result relation, and the project code blobs.
//
// Implementations own all entity collections exclusively and must serialize
// writes: id assignment is monotonic per entity kind and the read-then-write
// aggregate recomputation in SaveTestResult must not interleave.
type RecordStore interface {
	UserStore
	MaterialStore
	TestStore
	ProjectStore
}
