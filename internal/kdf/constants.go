// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package kdf

// Domain is the v2 domain separator. Every constant below is derived from
// it and is part of the frozen compatibility contract: a systems-language
// rewrite must not round up iteration counts or memory costs. Any parameter
// change requires a new domain separator (e.g. "universal-seed-v3") and a
// new spec version.
const Domain = "universal-seed-v2"

// ExtractSalt keys the HKDF-Extract step. Frozen: equals Domain.
const ExtractSalt = Domain

// PBKDF2Salt keys the PBKDF2 stretch stage. Frozen.
const PBKDF2Salt = Domain + "-stretch-pbkdf2"

// PBKDF2Iterations is the frozen PBKDF2-HMAC-SHA512 round count.
const PBKDF2Iterations = 600_000

// PBKDF2DKLen is the frozen PBKDF2 output length in bytes.
const PBKDF2DKLen = 64

// Argon2Salt keys the Argon2id stretch stage. Frozen.
const Argon2Salt = Domain + "-stretch-argon2id"

// Argon2 parameters, frozen per the v2 compatibility contract.
const (
	Argon2Time    = 3
	Argon2Memory  = 65536 // KiB = 64 MiB
	Argon2Threads = 4
	Argon2HashLen = 64
)

// ExpandInfo is the HKDF-Expand info string for the master key. Frozen.
const ExpandInfo = Domain + "-master"

// ExpandLength is the master key length in bytes.
const ExpandLength = 64

// ProfileDomain is the domain separator prepended to a profile derivation
// message (spec.md 4.9: DOMAIN + "-profile").
const ProfileDomain = Domain + "-profile"
