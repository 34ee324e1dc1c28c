/*
Package nbspacer inserts non-breaking spaces into HTML documents.

Description

Typographic conventions of many languages forbid a line break at certain
positions: after a one-letter preposition in Czech ("k mostu"), between a number
and its unit ("10 kg"), inside multi-part abbreviations ("s. r. o."), between
the groups of a large number ("1 000 000"). Package nbspacer replaces the
ordinary space at such positions with the marker "&nbsp;".

Transformations are performed by rules. A rule is a pure function on an
indexed stream: the text content of a document together with, for every
character, the position in the original document the character derives from.
Markup never enters the stream. Sub-package markup splits a document into a
content stream and a list of tags and later merges the transformed stream
back with the untouched tags, guided by the provenance indices.

There are two kinds of rules. A Leaf consists of a regular expression and a
map from capture spans to literal replacement tokens. A Group is an ordered
list of rules, applied one after the other. Sub-package controller registers
rules and groups under unique names and executes a deterministic selection of
them.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Rules and Patterns

Patterns are compiled with a Unicode-aware engine: \w, \b and \d know about
letters like 'ž' or 'Č'. All positions, both within matches and within
provenance indices, are counted in runes (code-points), not bytes.

A replacement token is assigned a single provenance index, taken from either
the first or the last character of the span it replaces (see Align). Several
output characters may therefore share one index. Tags anchored at that
position will be placed in front of all of them.

Rules with fixpoint semantics are applied repeatedly until the content no
longer changes. Authors of rules must make sure that a replacement token
never matches the pattern it is produced by; otherwise iteration would not
terminate. Leaf rules guard against this with an iteration limit.
*/
package nbspacer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// NBSP is the non-breaking marker inserted instead of an ordinary space.
const NBSP = "&nbsp;"
