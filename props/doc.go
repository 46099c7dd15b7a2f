// Package props provides the named-property sources that client settings are read from.
//
// A Source answers one question: what is the value of a named property, and is it
// set at all. The validator package only depends on that interface, so settings may
// come from an in-memory map, process environment variables, command-line flags or a
// settings file without the validators knowing.
//
// # Sources
//
//	props.Map{"contextPath": "/nacos"}
//	props.NewEnv("NACOS_", nil)                // NACOS_CONTEXT_PATH, NACOS_SERVER_ADDR
//	props.NewFlags(cmd.Flags(), map[string]string{"contextPath": "context-path"})
//	props.FromYAML(data)                       // nested keys joined with "."
//	props.ParseProperties(data)                // key=value / key: value lines
//
// # Layering
//
// Chain consults sources in order and returns the first one that has the key:
//
//	src := props.Chain(flags, props.NewEnv("NACOS_", nil), fileProps)
//	v, ok := src.Property("contextPath")
//
// Sources are read-only after construction and safe for concurrent use.
package props
