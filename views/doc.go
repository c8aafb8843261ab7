// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the server-side HTML pages as templ components.
//
// Portfolio components take no arguments for the page data. They read the
// portfolio from the render context with viewmodel.FromContext, so a page is
// assembled as
//
//	views.Layout(title, vm.Theme, viewmodel.ProvideComponent(vm, views.PortfolioPage()))
//
// Rendering any of them outside that scope fails with viewmodel.ErrScopeMissing.
// Dashboard components take a Dashboard value directly.
package views
