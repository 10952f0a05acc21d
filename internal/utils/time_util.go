// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import "time"

// UTCNowUnix returns the current UTC time as unix seconds.
func UTCNowUnix() int64 {
	return time.Now().UTC().Unix()
}
