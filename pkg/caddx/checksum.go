// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

// Checksum holds the two Fletcher sum bytes in wire order.
type Checksum [2]byte

// CalculateChecksum computes the panel's Fletcher-16 variant. Both sums are
// seeded with the buffer length and reduced modulo 255 with end-around carry.
func CalculateChecksum(data []byte) Checksum {
	sum1 := len(data)
	sum2 := sum1

	for _, d := range data {
		b := int(d)

		if 0xFF-sum1 < b {
			sum1 = (sum1 + 1) & 0xFF
		}
		sum1 = (sum1 + b) & 0xFF
		if sum1 == 0xFF {
			sum1 = 0
		}

		if 0xFF-sum2 < sum1 {
			sum2 = (sum2 + 1) & 0xFF
		}
		sum2 = (sum2 + sum1) & 0xFF
		if sum2 == 0xFF {
			sum2 = 0
		}
	}

	return Checksum{byte(sum1), byte(sum2)}
}
