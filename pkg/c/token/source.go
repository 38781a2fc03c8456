// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package token

import "github.com/consensys/go-clanger/pkg/util"

// Source is anything a parser can pull C tokens from, one at a time.  A source
// is a single-pass forward cursor: it is never rewound.
type Source interface {
	// Next advances the cursor and returns the token at the new position.
	// Once the source is exhausted this returns None, and continues to do so on
	// every subsequent call.
	Next() util.Option[Token]
	// Current returns whatever Next last returned.  Before the first call to
	// Next this is None.
	Current() util.Option[Token]
	// Line reports the line (counting from 1) of the most recently returned
	// token, or 0 if no position is known.
	Line() int
	// Column reports the column (counting from 1) of the most recently
	// returned token, or 0 if no position is known.
	Column() int
}
