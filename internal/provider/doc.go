// Package provider defines the accelerator provider contract.
//
// A provider supplies the two frame-evaluation capability handles as one
// unit: the install function and the stop function bind together or not
// at all. Providers compiled into the toolkit register themselves via
// Register() at init time; providers shipped as loadable modules are
// surfaced through a Source implementation instead (see pluginhost).
package provider
