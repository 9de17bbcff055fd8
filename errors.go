package mhash

import "golang.org/x/xerrors"

// Kind enumerates the engine's error taxonomy. Kind values are compared
// with errors.Is, never string-matched.
type Kind int

const (
	// DataLengthOverflowed means the algorithm's bit-count would wrap;
	// Max is always ^uint64(0), whatever the algorithm's counter width.
	DataLengthOverflowed Kind = iota
	// DataLengthMismatched means Update received a length that is not a
	// multiple of the hasher's block size.
	DataLengthMismatched
	// DataTooLarge means UpdateLast received more than one block.
	DataTooLarge
	// NotFinished means Digest was requested before UpdateLast ran.
	NotFinished
	// UpdatingAfterFinished means Update or UpdateLast ran after the
	// hasher had already finalized.
	UpdatingAfterFinished
	// IncorrectBlockSize means a Builder received a block size that is
	// not a positive multiple of the base block size.
	IncorrectBlockSize
	// IO wraps a filesystem failure encountered by a data sender.
	IO
	// DataEnded means a new identifier was submitted after End.
	DataEnded
)

func (k Kind) String() string {
	switch k {
	case DataLengthOverflowed:
		return "DataLengthOverflowed"
	case DataLengthMismatched:
		return "DataLengthMismatched"
	case DataTooLarge:
		return "DataTooLarge"
	case NotFinished:
		return "NotFinished"
	case UpdatingAfterFinished:
		return "UpdatingAfterFinished"
	case IncorrectBlockSize:
		return "IncorrectBlockSize"
	case IO:
		return "IO"
	case DataEnded:
		return "DataEnded"
	default:
		return "UnknownKind"
	}
}

// Error is the single concrete error type produced anywhere in this
// module. Only the fields relevant to Kind are populated; the rest are
// zero.
type Error struct {
	Kind  Kind
	Got   int
	Block int
	Max   uint64
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case DataLengthOverflowed:
		return xerrors.Errorf("%s: maximum acceptable length is %d", e.Kind, e.Max).Error()
	case DataLengthMismatched:
		return xerrors.Errorf("%s: got %d bytes, block size is %d", e.Kind, e.Got, e.Block).Error()
	case DataTooLarge:
		return xerrors.Errorf("%s: got %d bytes, block size is %d", e.Kind, e.Got, e.Block).Error()
	case IO:
		if e.Cause != nil {
			return xerrors.Errorf("%s: %w", e.Kind, e.Cause).Error()
		}
		return e.Kind.String()
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the underlying cause, if any, so callers may dig down
// to the originating *os.PathError and similar with errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error carrying the same Kind,
// allowing callers to write errors.Is(err, mhash.ErrNotFinished) without
// caring about the populated fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for use with errors.Is. Only Kind is compared.
var (
	ErrNotFinished         = &Error{Kind: NotFinished}
	ErrUpdatingAfterFinished = &Error{Kind: UpdatingAfterFinished}
	ErrIncorrectBlockSize  = &Error{Kind: IncorrectBlockSize}
	ErrDataEnded           = &Error{Kind: DataEnded}
)

// NewDataLengthMismatched builds the error Update returns when its
// input length is not a multiple of the block size.
func NewDataLengthMismatched(got, block int) *Error {
	return &Error{Kind: DataLengthMismatched, Got: got, Block: block}
}

// NewDataTooLarge builds the error UpdateLast returns when its input
// exceeds one block.
func NewDataTooLarge(got, block int) *Error {
	return &Error{Kind: DataTooLarge, Got: got, Block: block}
}

// NewDataLengthOverflowed builds the error Update/UpdateLast returns
// when the algorithm's bit-count would wrap.
func NewDataLengthOverflowed(max uint64) *Error {
	return &Error{Kind: DataLengthOverflowed, Max: max}
}

// NewIOError wraps a filesystem failure encountered by a data sender.
func NewIOError(cause error) *Error {
	return &Error{Kind: IO, Cause: cause}
}
