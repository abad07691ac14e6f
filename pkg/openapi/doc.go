// Package openapi reads the OpenAPI description of the registration request
// and turns the request body schema of an operation into a model.FormModel.
//
// Properties are ordered by the `x-formgen-order` extension on the object
// schema; any property it omits follows alphabetically. Property `title`
// becomes the field label, `format` selects the input type (email, password),
// and the `x-formgen-placeholder` / `x-formgen-input` extensions fill the
// placeholder and override the input type.
package openapi
