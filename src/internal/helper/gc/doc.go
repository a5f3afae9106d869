// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library so the logger sinks, the prefix
// decorator and the logpipe command can render lines without allocating a new
// buffer for every log call.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
