// Package startup generates the runtime module that chains a chunk's startup
// continuation through the chunks depending on its entry point.
//
// The generated code captures the previous continuation as next, replaces the
// continuation with a function that ensures every entry-dependent chunk is
// loaded and then resumes next exactly once:
//
//	var next = __webpack_require__.x;
//	__webpack_require__.x = function() {
//		return Promise.all([
//			__webpack_require__.e("vendors"),
//			__webpack_require__.e("shared")
//		]).then(next);
//	};
//
// Generation is a pure function of the Request: it performs no I/O and
// identical requests yield identical bytes.
package startup
