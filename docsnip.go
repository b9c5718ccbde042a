// Package docsnip turns a component library's documentation into editor
// live templates. It reads documentation pages, isolates their "Usage"
// section, classifies the code blocks found there, stores the valid
// import/usage pairs as JSON records and assembles template sets from them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, etree/, git/).
package docsnip
