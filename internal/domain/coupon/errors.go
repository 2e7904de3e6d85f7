package coupon

import "errors"

var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrNotCouponOwner  = errors.New("you are not the owner of this coupon")
	ErrDuplicateCode   = errors.New("coupon code already exists for this store")
	ErrNoDiscountValue = errors.New("coupon needs either a percent or an amount discount")
)
