package templates

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/cbroglie/mustache"
)

// Load reads a template file in full
func Load(filesystem types.FS, path string) (string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		code := errors.ErrFileRead
		if stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, fs.ErrPermission) {
			code = errors.ErrFileOpen
		}
		return "", errors.Wrapf(err, code, "cannot open template %s", path).WithDetail("path", path)
	}
	return string(data), nil
}

// Render substitutes vars into text. Output is never HTML-escaped.
func Render(text string, vars types.Variables) (string, error) {
	tmpl, err := mustache.ParseStringRaw(text, true)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateParse, "failed to parse template")
	}

	out, err := tmpl.Render(map[string]interface{}(vars))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateRender, "failed to render template")
	}
	return out, nil
}
