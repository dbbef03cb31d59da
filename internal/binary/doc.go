// Package binary downloads and installs the prebuilt TableTrace executable
// for the current platform.
//
// # Pipeline
//
// An install runs four stages in order and stops at the first failure:
//
//  1. Resolve: platform.Resolve maps the platform key to a release target.
//  2. Locate: NewDescriptor composes the download URL and local file name.
//  3. Download: Downloader streams the artifact to disk, following at most
//     MaxRedirects 301/302 hops and reporting progress milestones.
//  4. Finalize: Finalizer checks the written file, reads its size from disk
//     and sets the executable bits on non-Windows targets.
//
// Installer ties the stages together and returns a Result that the report
// package turns into operator output.
//
// # Failure Model
//
// Every error belongs to one errs.Class (RedirectLimitExceeded, HTTPStatus,
// NetworkError, IOError, PermissionError, or platform.UnsupportedPlatform);
// Classify maps it to an ErrorKind. Except for PermissionError, no failure
// leaves a file behind: the body is streamed to a ".tmp" sibling that is
// removed on error and renamed into place on success.
//
// Nothing is retried and no integrity check is performed.
//
// # Usage
//
//	inst, err := binary.NewInstaller(binary.InstallerConfig{
//	    BinDir: "bin",
//	    Release: binary.Release{
//	        BaseURL:     "https://github.com",
//	        Repository:  "monorka/tabletrace-cli",
//	        Version:     "0.3.1",
//	        AssetPrefix: "tabletrace",
//	        BinaryName:  "tabletrace-bin",
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	res := inst.Install(ctx, platform.NewKey(runtime.GOOS, runtime.GOARCH))
//	if !res.OK() {
//	    return res.Err
//	}
package binary
