// Package s3 stores rendered images in Amazon S3 or an S3-compatible service
// such as MinIO or DigitalOcean Spaces.
//
// Storage implements storage.Storage on top of the AWS SDK v2:
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "payment-qr",
//		Region: "eu-central-1",
//	})
//	if err != nil {
//		return err
//	}
//	obj, err := store.Put(ctx, "invoices/2024-001.png", pngBytes, "image/png")
//
// Credentials come from Config when both AccessKeyID and SecretKey are set and
// from the default AWS chain otherwise. Set Endpoint and ForcePathStyle for
// S3-compatible services.
//
// # Error Handling
//
// SDK errors are mapped to the storage sentinels: ErrNotFound, ErrAccessDenied,
// ErrServiceUnavailable, ErrBucketNotFound, ErrOperationTimeout and
// ErrOperationCanceled. Other API errors keep their code in the message.
//
// # Testing
//
// WithS3Client injects any S3Client implementation, typically a testify mock.
package s3
