package dock

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ncruces/zenity"
)

// Opener follows an item's target.
type Opener interface {
	Open(item Item) error
}

// DialogOpener shows a native dialog for items whose target is still a
// placeholder.
type DialogOpener struct {
	info func(text string, options ...zenity.Option) error
}

func NewDialogOpener() *DialogOpener {
	return &DialogOpener{info: zenity.Info}
}

func (o *DialogOpener) Open(item Item) error {
	slog.Info("dock item opened", "title", item.Title, "target", item.Target)
	if item.Target != "" && item.Target != "#" {
		return fmt.Errorf("dock: no handler for target %q", item.Target)
	}
	err := o.info(
		fmt.Sprintf("%s is coming soon.", item.Title),
		zenity.Title(item.Title),
		zenity.InfoIcon,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
