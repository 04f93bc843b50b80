package console

import (
	"fmt"
	"io"

	"superhero/directory/internal/domain"
	"superhero/directory/internal/presenter"
)

const detailVariant = "portrait_xlarge"

// Router prints the detail card of a selected character
type Router struct {
	out       io.Writer
	localizer presenter.Localizer
}

func NewRouter(out io.Writer, localizer presenter.Localizer) *Router {
	return &Router{out: out, localizer: localizer}
}

func (r *Router) ShowDetails(hero domain.Character) {
	if hero == nil {
		return
	}

	vm := presenter.NewViewModel(hero, r.localizer)
	fmt.Fprintf(r.out, "\n🦸 %s\n%s\n🖼  %s\n\n", vm.Name, vm.Description, hero.Thumbnail().URL(detailVariant))
}
