// Package validator checks client settings before the client issues any request.
//
// It combines two checks with deliberately different failure styles:
//
//   - CheckContextPath and CheckInitParam return a *ConfigError for a context path
//     with consecutive separators. This is a hard configuration error: continuing
//     would misroute every request.
//   - CheckValidURL returns ("", false) for an unusable endpoint. This is a soft
//     outcome: callers hold several candidates and try the next one.
//
// # Usage
//
//	if err := validator.CheckInitParam(settings); err != nil {
//		return err // errors.Is(err, validator.ErrInvalidConfig)
//	}
//
//	for _, candidate := range candidates {
//		if endpoint, ok := validator.CheckValidURL(candidate); ok {
//			return endpoint, nil
//		}
//	}
//
// Nothing in this package logs or performs I/O.
package validator
