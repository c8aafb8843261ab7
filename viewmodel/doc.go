// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package viewmodel holds the request-scoped portfolio view model shared by the
public portfolio components.

# Scope

The page handler builds one Portfolio per render and provides it on the
render context:

	vm := viewmodel.New(profile, settings, artworks)
	page := viewmodel.ProvideComponent(vm, views.PortfolioPage())
	err := page.Render(r.Context(), w)

Any component rendered beneath the provider reads it back:

	vm, err := viewmodel.FromContext(ctx)
	if err != nil {
		return err // ErrScopeMissing: rendered outside a provider
	}

A read without a provider never yields an empty Portfolio; it fails with
ErrScopeMissing so the missing wiring surfaces on the first render.

# Selection

SelectedArtwork is the only mutable field. It changes through SelectArtwork,
which only accepts ids present in Artworks:

	if err := vm.SelectArtwork(id); errors.Is(err, viewmodel.ErrArtworkNotInCollection) {
		// 404
	}

All readers of the same scope share the pointer, so the new selection is
visible to every component rendered afterwards.
*/
package viewmodel
