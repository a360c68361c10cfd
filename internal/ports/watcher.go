package ports

// Watcher monitors an input directory for newly created documents.
type Watcher interface {
	// Watch starts monitoring dir and invokes onCreate with the absolute
	// path of each new file. Events are debounced; editors and download
	// managers often write a file in several bursts.
	Watch(dir string, onCreate func(path string)) error

	// Stop terminates watching. Safe to call more than once.
	Stop()
}
