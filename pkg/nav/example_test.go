package nav_test

import (
	"fmt"

	"github.com/matzehuels/folio/pkg/nav"
)

func ExamplePager() {
	p := nav.NewPager([]string{"profile", "intro", "projects"}, nav.DefaultOptions(), nil)
	ctrl := p.Controller()

	p.Key(nav.KeyEvent{Key: nav.KeyDown})
	fmt.Println(ctrl.Section())

	p.ClickIndicator(2)
	fmt.Println(ctrl.Section(), ctrl.HasNext())

	p.Key(nav.KeyEvent{Key: nav.KeyDown})
	fmt.Println(ctrl.Current())
	// Output:
	// intro
	// projects false
	// 2
}

func ExampleController_Indicators() {
	c := nav.NewController([]string{"profile", "intro", "projects"})
	c.Advance()
	for _, ind := range c.Indicators() {
		mark := "o"
		if ind.Active {
			mark = "*"
		}
		fmt.Println(mark, ind.Section)
	}
	// Output:
	// o profile
	// * intro
	// o projects
}

func ExampleNearestScrollable() {
	list := &nav.Box{Scroll: nav.Metrics{ScrollTop: 0, ScrollHeight: 900, ClientHeight: 300}}
	item := &nav.Box{Container: list}

	el := nav.NearestScrollable(item)
	atTop, atBottom := nav.Edges(el.Metrics(), 5)
	fmt.Println(atTop, atBottom)
	// Output:
	// true false
}
