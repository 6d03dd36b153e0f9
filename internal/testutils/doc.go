// Package testutils provides testing utilities for the task service.
//
// This package contains helpers for:
//   - Creating test tasks
//   - Setting up test servers for API testing
//   - Executing API requests
//   - Asserting API responses
//
// # Test Tasks
//
//	// Create a task with default values:
//	task := testutils.MustCreateTaskForTest(t)
//
//	// Create a task with specific options:
//	task := testutils.MustCreateTaskForTest(t,
//	    testutils.WithTaskID(7),
//	    testutils.WithTaskTitle("Water plants"),
//	    testutils.WithTaskDone(true),
//	)
//
// # Request Execution
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"X"}`)
//
// # Response Assertions
//
//	testutils.AssertTaskResponse(t, resp, http.StatusCreated, expected)
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Title is required")
package testutils
