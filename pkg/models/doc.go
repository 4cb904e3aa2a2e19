// Package models provides the data models shared between the epirus
// commands, the generation pipeline and the configuration layer.
//
// # Project Configuration
//
// [ProjectConfiguration] describes one scaffold run: the project and package
// names, the output directory, the HTTP context path and the address length
// of the target chain. It is built by the invoking command and validated
// before any directory is touched.
//
// # Generator Options
//
// [GeneratorOptions] is the single versioned option set handed to the code
// generator. Two presets cover every command:
//
//	opts := models.DefaultGeneratorOptions()          // new, import, jar
//	opts := models.InterfaceOnlyOptions(withImpl)     // generate
//
// # Template Types
//
// The new command scaffolds one of the bundled [TemplateType] values:
//
//	t, err := models.ParseTemplateType("erc777") // models.TemplateERC777
package models
