package miniofdm

import "github.com/cwbudde/miniofdm/internal/dsptypes"

// Complex is the type constraint satisfied by the two complex precisions
// the core is parametric over. The canonical definition lives in
// internal/dsptypes.
type Complex = dsptypes.Complex

// Float is the floating-point constraint corresponding to Complex.
type Float = dsptypes.Float
