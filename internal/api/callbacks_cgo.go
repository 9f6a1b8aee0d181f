package api

/*
#include "bindings.h"

// imports (satisfier exports from callbacks.go)
MiniscriptAvailability cSign(void *ctx, uint8_t *key, size_t key_len, uint8_t **sig_out, size_t *sig_len_out);
bool cCheckAfter(void *ctx, uint32_t value);
bool cCheckOlder(void *ctx, uint32_t value);
MiniscriptAvailability cSatSha256(void *ctx, uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatRipemd160(void *ctx, uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatHash256(void *ctx, uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatHash160(void *ctx, uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);

// Gateway functions. The engine's slots take const pointers; the Go exports
// cannot express const, so the casts happen here.
MiniscriptAvailability cSign_cgo(void *ctx, const uint8_t *key, size_t key_len, uint8_t **sig_out, size_t *sig_len_out) {
	return cSign(ctx, (uint8_t *)key, key_len, sig_out, sig_len_out);
}
bool cCheckAfter_cgo(void *ctx, uint32_t value) {
	return cCheckAfter(ctx, value);
}
bool cCheckOlder_cgo(void *ctx, uint32_t value) {
	return cCheckOlder(ctx, value);
}
MiniscriptAvailability cSatSha256_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out) {
	return cSatSha256(ctx, (uint8_t *)hash, hash_len, out, len_out);
}
MiniscriptAvailability cSatRipemd160_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out) {
	return cSatRipemd160(ctx, (uint8_t *)hash, hash_len, out, len_out);
}
MiniscriptAvailability cSatHash256_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out) {
	return cSatHash256(ctx, (uint8_t *)hash, hash_len, out, len_out);
}
MiniscriptAvailability cSatHash160_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out) {
	return cSatHash160(ctx, (uint8_t *)hash, hash_len, out, len_out);
}
*/
import "C"

// We need these gateway functions to allow calling back to a Go function
// from C code. This file must stay separate from callbacks.go: a file with
// //export directives cannot also define C functions in its preamble.
