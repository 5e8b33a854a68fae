package segments

import (
	"os"

	"trayline/internal/tray"
)

// RegisterBuiltin adds every builtin segment to the registry. activeMode
// supplies the live mode identifier for the mode segment.
func RegisterBuiltin(reg *tray.Registry, activeMode func() string) error {
	wd, _ := os.Getwd()
	all := []*tray.Segment{
		Clock(),
		Date(),
		Path(),
		User(),
		Git(wd),
		Spinner(),
		Mode(activeMode),
	}
	for _, s := range all {
		if err := reg.Register(s); err != nil {
			return err
		}
	}
	return nil
}
