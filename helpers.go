// Copyright 2025 Anna Kovach (annakov)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

// MustValue calls Value on the provided future, and returns its value,
// only if the future succeeded, otherwise, it panics with the failure
// error.
//
// By name convention, it should be used on futures which are known to
// succeed, typically in tests and setup code.
func MustValue[T any](f *Future[T]) T {
	v, err := f.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// WaitAll waits for all the provided futures to complete, then returns
// true, or returns false if no futures are provided.
func WaitAll[T any](fs ...*Future[T]) (waited bool) {
	if len(fs) == 0 {
		return false
	}

	for _, f := range fs {
		f.Wait()
	}
	return true
}
