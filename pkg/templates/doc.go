// Package templates decides which template file governs each script kind and
// renders template text with variable substitution.
//
// Resolution order for a kind, first match wins:
//
//  1. an explicit template path (command line, then the
//     add-change.<kind>_template key), used verbatim;
//  2. the first directory of the search chain holding <kind>.tmpl, where
//     the chain is the template directory option, then
//     <user root>/templates, then <system root>/templates;
//  3. otherwise a TEMPLATE_NOT_FOUND error naming the kind.
//
// Only existence is checked during resolution. A file that exists but cannot
// be read fails later, when it is loaded.
//
// Rendering substitutes {{name}} placeholders using mustache semantics with
// HTML escaping disabled. Unknown names render as empty strings and list
// values can be iterated with {{#requires}}{{.}}{{/requires}}.
package templates
