// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package accuracy provides metrics computing the accuracy of rating predictions.

Each metric reduces a non-empty list of predictions to a single score:

	RMSE: root mean squared error between true and estimated ratings.
	MAE: mean absolute error between true and estimated ratings.
	FCP: fraction of concordant pairs, averaged over users (Koren and Sill, 2013, section 5.2).

A metric prints "<NAME>: <score>" with four decimals to the report writer when
its output flag is set.
*/
package accuracy
