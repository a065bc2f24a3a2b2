package adapter

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// Compare reports every difference between two bindings of the same group.
// It returns nil when they agree.
func Compare(a, b *Navigator) error {
	var result *multierror.Error
	diff := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}
	if a == nil || b == nil {
		if a != b {
			diff("one binding is nil")
		}
		return result.ErrorOrNil()
	}
	if a.Kind != b.Kind {
		diff("%s: kind %s != %s", a.Name, a.Kind, b.Kind)
	}
	if a.Name != b.Name {
		diff("name %q != %q", a.Name, b.Name)
	}
	if a.InitialRoute != b.InitialRoute {
		diff("%s: initial route %q != %q", a.Name, a.InitialRoute, b.InitialRoute)
	}
	if !reflect.DeepEqual(a.Chrome.Map(), b.Chrome.Map()) {
		diff("%s: chrome %v != %v", a.Name, a.Chrome.Map(), b.Chrome.Map())
	}
	if !reflect.DeepEqual(a.Self.Map(), b.Self.Map()) {
		diff("%s: options %v != %v", a.Name, a.Self.Map(), b.Self.Map())
	}
	if len(a.Items) != len(b.Items) {
		diff("%s: %d items != %d items", a.Name, len(a.Items), len(b.Items))
		return result.ErrorOrNil()
	}
	for i := range a.Items {
		x, y := a.Items[i], b.Items[i]
		if x.Name != y.Name {
			diff("%s: item %d is %q != %q", a.Name, i, x.Name, y.Name)
			continue
		}
		if !reflect.DeepEqual(x.Props(), y.Props()) {
			diff("%s/%s: props %v != %v", a.Name, x.Name, x.Props(), y.Props())
		}
		if x.Icon != y.Icon {
			diff("%s/%s: icon %q != %q", a.Name, x.Name, x.Icon, y.Icon)
		}
	}
	return result.ErrorOrNil()
}
