// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package uploads issues presigned S3 PUT URLs for artwork images.
//
// The browser asks for a URL with the filename, content type and size, then
// uploads the file straight to the bucket. Only image types are signed, and
// every upload gets a fresh key under artworks/<owner>/.
package uploads
