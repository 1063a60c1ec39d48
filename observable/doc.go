// Package observable wires change events at type scope: one named
// changed event per declared property, plus a single shared
// "any property changed" event for the whole type.
//
// The wiring is an explicit builder invoked once at type-definition
// time, typically from a package-level var block:
//
//	type Person struct {
//	    name string
//	    age  int
//	}
//
//	var (
//	    personModel = observable.NewModel[*Person]()
//
//	    personName = observable.Attach(personModel, property.New[*Person, string]("name",
//	        property.WithGetter(func(p *Person) string { return p.name }),
//	        property.WithSetter(func(p *Person, v string) { p.name = v }),
//	    ))
//	)
//
// Attach registers the property's changed event under its name and
// wires the model's shared changed event into it. Afterwards both
//
//	personName.Changed().Of(p) // name changes for p only
//	personModel.Changed().Of(p) // any property change for p
//
// deliver property.Change payloads.
//
// A name can be registered once: re-attaching or re-declaring it fails
// with ErrRedeclared, so a declared event can never be replaced out
// from under its subscribers.
//
// For plain properties - ones managed outside this library - Declare
// creates the named event only; the owning code is responsible for
// firing it from its setter.
package observable
