package capability

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/davrell/istype/pkg/istype/core"
	"github.com/davrell/istype/pkg/istype/iterable"
)

// Satisfies reports whether v structurally satisfies the tier described
// by d. It never panics; probing failures count as non-satisfaction.
func Satisfies(v any, d *Descriptor) bool {
	return Require(v, d) == nil
}

// Require checks v against d and reports the first missing requirement.
// A nil return means v satisfies the tier.
func Require(v any, d *Descriptor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("capability: probing for %s panicked: %v", tierName(d), r)
		}
	}()

	if d == nil {
		return errors.New("capability: nil descriptor")
	}
	if v == nil {
		return errors.Errorf("capability: nil value does not satisfy %s", d.Name)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return errors.Errorf("capability: nil %s does not satisfy %s", rv.Kind(), d.Name)
		}
	}
	return require(rv, v, d)
}

func require(rv reflect.Value, v any, d *Descriptor) error {
	if d.Base != nil {
		if err := require(rv, v, d.Base); err != nil {
			return err
		}
	}
	if d.Size && !core.HasMember(rv, "Size") {
		return errors.Errorf("capability: %s: missing member Size", d.Name)
	}
	if d.Iterable && !iterable.IsIterable(v) {
		return errors.Errorf("capability: %s: value is not iterable", d.Name)
	}
	for _, name := range d.Methods {
		if !core.HasCallable(rv, name) {
			return errors.Errorf("capability: %s: missing callable member %s", d.Name, name)
		}
	}
	return nil
}

// IsReadonlyCollection reports whether v exposes the minimal
// membership-test surface: Size, Has and Keys.
func IsReadonlyCollection(v any) bool {
	return Satisfies(v, ReadonlyCollection)
}

// IsSetLike reports whether v is a readonly collection that is also
// iterable and exposes the mutating set surface.
func IsSetLike(v any) bool {
	return Satisfies(v, SetLike)
}

// IsExtendedSetLike reports whether v is set-like and additionally
// exposes the set-composition surface (Union, Difference, ...).
func IsExtendedSetLike(v any) bool {
	return Satisfies(v, ExtendedSetLike)
}

// IsMapLike reports whether v exposes the keyed-collection surface.
func IsMapLike(v any) bool {
	return Satisfies(v, MapLike)
}

func tierName(d *Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return d.Name
}
