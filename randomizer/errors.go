package randomizer

import "errors"

// ErrEmptyGenerators indicates a ProductReplacement was constructed from an
// empty generating set, which has no well-defined random element.
var ErrEmptyGenerators = errors.New("randomizer: empty generating set")
