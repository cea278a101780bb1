package resource

// Handle is the externally visible handle number a module uses to reference
// a resource. Handle numbers are dense within one module's handle space and
// are reused after removal.
type Handle uint32

// Index locates a resource record inside a Table. An Index is a plain
// copyable locator and carries no ownership; reference counts track live
// IndexTable entries instead.
type Index uint32
