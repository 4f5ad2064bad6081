// Package storage defines a minimal object store for rendered images and a
// local filesystem implementation.
//
// Keys are slash-separated relative paths such as "qr/2024/invoice-1.png".
// Leading slashes are dropped and keys containing ".." are rejected with
// ErrInvalidPath.
//
//	store, err := storage.NewLocal("./var/qr", storage.WithBaseURL("https://cdn.example.com/qr"))
//	if err != nil {
//		return err
//	}
//	obj, err := store.Put(ctx, "invoice-1.png", pngBytes, "image/png")
//	fmt.Println(obj.URL) // https://cdn.example.com/qr/invoice-1.png
//
// The S3 implementation lives in integration/storage/s3.
package storage
