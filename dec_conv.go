// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "io"

// scan reads a maximal run of decimal digits from r and returns them in res,
// unnormalized, together with the number of digits read. The first non digit
// byte is unread. Reaching io.EOF ends the run and is not reported as an
// error.
func (z dec) scan(r io.ByteScanner) (res dec, count int, err error) {
	z = z[:0]
	for {
		var ch byte
		if ch, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				err = nil
			}
			break
		}
		if ch < '0' || '9' < ch {
			_ = r.UnreadByte()
			break
		}
		z = append(z, ch-'0')
	}
	return z, len(z), err
}

// utoa converts x to an ASCII representation.
func (x dec) utoa() []byte {
	return x.itoa(false)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x dec) itoa(neg bool) []byte {
	return x.appendText(make([]byte, 0, len(x)+1), neg && !x.isZero())
}

// appendText appends the digits of x to buf, preceded by a '-' if neg. An
// empty x is written as "0".
func (x dec) appendText(buf []byte, neg bool) []byte {
	if neg {
		buf = append(buf, '-')
	}
	if len(x) == 0 {
		return append(buf, '0')
	}
	for _, d := range x {
		buf = append(buf, '0'+d)
	}
	return buf
}

// String returns the decimal representation of x.
func (x dec) String() string {
	return string(x.utoa())
}
