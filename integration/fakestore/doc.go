// Package fakestore is a client for the Fake Store REST API
// (https://fakestoreapi.com).
//
// It covers authentication, user management, the product catalog and cart
// history:
//
//	client, err := fakestore.New(cfg, fakestore.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	token, err := client.Login(ctx, "mor_2314", "83r5^_")
//	products, err := client.ListProducts(ctx, fakestore.ProductQuery{
//		Category: "electronics",
//		Sort:     fakestore.SortDesc,
//	})
//
// # Errors
//
// Transport failures and non-2xx responses wrap ErrRequestFailed; undecodable
// bodies wrap ErrDecodeResponse. A rejected login returns ErrInvalidLogin.
// Input problems (ErrInvalidUserID, ErrInvalidSort) are reported before any
// request is made.
//
// # Retries
//
// Read operations (ListProducts, GetProduct, ListCarts) are retried on
// transport errors and 5xx responses, up to Config.RetryAttempts extra
// attempts, waiting min(RetryBaseDelay*2^n, RetryMaxDelay) between them.
// Login and user writes are never retried.
package fakestore
