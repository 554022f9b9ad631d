// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy maps request routes to the access level they require.
//
// A [Policy] is built once at startup from the built-in [DefaultRules] plus
// any configured overrides and is read-only afterwards, so a single value is
// shared by every in-flight request without locking.
//
// Rules are written as
//
//	[METHOD ]/pattern=requirement
//
// where requirement is one of "public", "authenticated" or "role=<ROLE>".
// A pattern ending in "/**" matches the prefix itself and everything below
// it; any other pattern matches the path exactly.
//
// [Policy.Resolve] prefers an exact match over a wildcard match, a longer
// wildcard prefix over a shorter one, and a method-specific rule over a
// method-agnostic rule of equal specificity. Paths matched by no rule fall
// back to the configured default requirement.
package policy
