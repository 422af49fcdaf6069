package frac

import "math/big"

const intSize = 32 << (^uint(0) >> 63)

var big1 = big.NewInt(1)
