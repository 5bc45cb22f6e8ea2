/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package validate defines the contract between the writer and a validation
// engine, and the gate that turns a validation pass into a go/no-go decision
// for a write.
//
// The full GEDCOM rule engine lives outside this module; anything that
// implements Validator can be plugged in. ReferenceValidator is a small
// built-in implementation that checks cross-reference integrity only.
//
// Validation is exhaustive: every finding is collected and reported. This is
// deliberately different from the writer's dialect check, which stops at the
// first violation.
package validate
