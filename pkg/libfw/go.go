package libfw

func Go(call func()) {
	name := FunName(call)
	go func() {
		defer Catch("Go.func")
		Debug("Go.Add: %s", name)
		call()
		Debug("Go.Del: %s", name)
	}()
}
