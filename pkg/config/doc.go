// Package config loads configuration structs from the environment using
// github.com/caarlos0/env/v11 tags, with optional .env files read through
// github.com/joho/godotenv.
//
// Every component of the client declares a Config with env tags and
// envDefault values. The CLI loads them with a shared prefix:
//
//	l := config.NewLoader(config.WithPrefix("LEARNZONE_"))
//	var api apiclient.Config
//	if err := config.Parse(l, &api); err != nil {
//		return err
//	}
//
// A Loader parses each struct type once; Reset clears the cache.
package config
