// Package s3 provides an S3 implementation of the docstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("piecewise/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	l := loader.New()
//	fn, err := l.Fetch(ctx, store, "tariff.json")
//
// # Features
//
//   - Managed multipart uploads for large documents
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
