// Package tokenprogram holds the two SPL token program IDs a mint can
// be owned by, and validates a probed owner against them.
package tokenprogram

import "fmt"

// Classic is the original SPL Token program.
var Classic = [32]byte{
	6, 221, 246, 225, 215, 101, 161, 147, 217, 203, 225, 70, 206, 235, 121, 172,
	28, 180, 133, 237, 95, 91, 55, 145, 58, 140, 245, 133, 126, 255, 0, 169,
}

// Token2022 is the Token-2022 program, a superset of the classic
// program's instruction set with optional extensions.
var Token2022 = [32]byte{
	6, 221, 246, 225, 238, 117, 143, 222, 24, 66, 93, 188, 228, 108, 205, 218,
	182, 26, 252, 77, 131, 185, 13, 39, 254, 189, 249, 40, 216, 161, 139, 252,
}

// ErrUnsupportedOwner is returned when a mint's owner is neither the
// classic nor the 2022 token program. Any other owner is a fatal error
// for this protocol.
type ErrUnsupportedOwner struct {
	Owner [32]byte
}

func (e *ErrUnsupportedOwner) Error() string {
	return fmt.Sprintf("tokenprogram: mint owner %x is neither the classic nor 2022 token program", e.Owner)
}

// Validate confirms owner is one of the two known token programs.
func Validate(owner [32]byte) error {
	if owner == Classic || owner == Token2022 {
		return nil
	}
	return &ErrUnsupportedOwner{Owner: owner}
}
